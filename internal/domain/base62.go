package domain

// Base62Alphabet is the fixed alphabet for generated short codes:
// digits first, then lowercase, then uppercase.
const Base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const base = int64(len(Base62Alphabet))

// EncodeID converts a positive surrogate id into its base62 representation.
// The mapping is bijective: distinct ids always yield distinct codes, and
// code length is non-decreasing in id. Decoding is never needed, codes are
// looked up by string.
func EncodeID(id int64) (string, error) {
	if id <= 0 {
		return "", ErrNonPositiveID
	}

	// 11 digits cover the full int64 range in base62.
	var buf [11]byte
	i := len(buf)
	for id > 0 {
		i--
		buf[i] = Base62Alphabet[id%base]
		id /= base
	}
	return string(buf[i:]), nil
}
