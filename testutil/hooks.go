package testutil

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var hookSeq atomic.Int64

// AfterQueryOnce runs fn once, right after the first query on table whose SQL
// contains fragment. fn gets a fresh session on the same connection or
// transaction, so a test can change rows between a service's read and the
// write that depends on it.
func AfterQueryOnce(t *testing.T, gdb *gorm.DB, table, fragment string, fn func(conn *gorm.DB)) {
	t.Helper()

	var once sync.Once
	name := fmt.Sprintf("testutil:after_query_%d", hookSeq.Add(1))
	err := gdb.Callback().Query().After("gorm:query").Register(name, func(db *gorm.DB) {
		if db.Error != nil || db.Statement.Table != table {
			return
		}
		if !strings.Contains(db.Statement.SQL.String(), fragment) {
			return
		}
		once.Do(func() {
			fn(db.Session(&gorm.Session{NewDB: true}))
		})
	})
	require.NoError(t, err)
}
