package data

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// newTestData opens a fresh in-memory sqlite store with the schema applied.
// Each store gets its own named shared-cache database so all pooled
// connections see the same data.
func newTestData(t *testing.T) *Data {
	t.Helper()

	dsn := fmt.Sprintf("file:test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log.DefaultLogger),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UrlMapping{}, &UrlStats{}))

	return &Data{db: db}
}
