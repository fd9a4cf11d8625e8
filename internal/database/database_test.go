package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestOptionsWithDefaults(t *testing.T) {
	opts := (*Options)(nil).withDefaults()
	assert.Equal(t, logger.Error, opts.LogLevel)
	assert.Equal(t, 20, opts.MaxOpenConns)
	assert.Equal(t, 10, opts.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, opts.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, opts.ConnMaxIdleTime)
	assert.False(t, opts.SkipMigrate)
}

func TestOptionsSkipMigrateSurvivesDefaulting(t *testing.T) {
	in := &Options{SkipMigrate: true, LogLevel: logger.Silent}
	opts := in.withDefaults()
	assert.True(t, opts.SkipMigrate)
	assert.Equal(t, logger.Silent, opts.LogLevel)
	// Caller's struct is left alone.
	assert.Equal(t, 0, in.MaxOpenConns)
	assert.Equal(t, 20, opts.MaxOpenConns)
}
