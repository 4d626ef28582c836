package gormstore

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"pumpdesk/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRedactSQL(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "pending reset status",
			sql:  `UPDATE "fuel_pumps" SET "status"='pending_reset:NewPass1' WHERE id = 'p-1'`,
			want: `UPDATE "fuel_pumps" SET "status"='***' WHERE id = '***'`,
		},
		{
			name: "credential rotation",
			sql:  `UPDATE "users" SET "password_hash"='ab12',"password_salt"='cd34' WHERE id = 'a-1'`,
			want: `UPDATE "users" SET "password_hash"='***',"password_salt"='***' WHERE id = '***'`,
		},
		{
			name: "escaped quote stays inside the literal",
			sql:  `UPDATE "fuel_pumps" SET "status"='pending_reset:it''s' WHERE id = 'p-1'`,
			want: `UPDATE "fuel_pumps" SET "status"='***' WHERE id = '***'`,
		},
		{
			name: "back-office statement is untouched",
			sql:  `SELECT * FROM "customers" WHERE name = 'ABC Logistics'`,
			want: `SELECT * FROM "customers" WHERE name = 'ABC Logistics'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redactSQL(tt.sql))
		})
	}
}

func TestGormSlogLogger_Trace(t *testing.T) {
	newLogger := func(cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
		var buf bytes.Buffer
		l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg).(*gormSlogLogger)

		return l, &buf
	}
	decode := func(t *testing.T, buf *bytes.Buffer) map[string]any {
		t.Helper()
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		return entry
	}
	statusUpdate := func() (string, int64) {
		return `UPDATE "fuel_pumps" SET "status"='pending_reset:NewPass1'`, 0
	}

	t.Run("failed statement is logged redacted", func(t *testing.T) {
		l, buf := newLogger(&config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverPostgres}})

		l.Trace(context.Background(), time.Now(), statusUpdate, errors.New("database is locked"))

		entry := decode(t, buf)
		assert.Equal(t, "Record store statement failed", entry["msg"])
		assert.Equal(t, config.StorageDriverPostgres, entry["driver"])
		assert.NotContains(t, entry["sql"], "NewPass1")
		assert.NotContains(t, buf.String(), "NewPass1")
	})

	t.Run("missing rows are not errors", func(t *testing.T) {
		l, buf := newLogger(nil)

		l.Trace(context.Background(), time.Now(), statusUpdate, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow threshold comes from config", func(t *testing.T) {
		l, buf := newLogger(&config.Config{Storage: config.StorageConfig{SlowQueryThreshold: time.Millisecond}})

		l.Trace(context.Background(), time.Now().Add(-time.Second), statusUpdate, nil)

		entry := decode(t, buf)
		assert.Equal(t, "Record store statement slow", entry["msg"])
		assert.Equal(t, config.StorageDriverSQLite, entry["driver"])
		assert.NotContains(t, buf.String(), "NewPass1")
	})
}
