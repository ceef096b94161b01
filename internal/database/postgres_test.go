package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "postgres://***@db:5432/eccube", RedactURL("postgres://user:secret@db:5432/eccube"))
	assert.Equal(t, "postgres://localhost/eccube", RedactURL("postgres://localhost/eccube"))
	assert.Equal(t, "", RedactURL(""))
}

func TestConnectPostgres_EmptyURL(t *testing.T) {
	_, err := ConnectPostgres("")
	assert.Error(t, err)
}

func TestConnectRedisWithSentinel_NoAddrs(t *testing.T) {
	_, err := ConnectRedisWithSentinel(nil, "mymaster", "")
	assert.Error(t, err)
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, ClosePostgres(nil))
	assert.NoError(t, CloseRedis(nil))
}
