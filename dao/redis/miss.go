package redis

import (
	"errors"
	"strings"

	goredis "github.com/go-redis/redis/v8"
)

// isMiss reports whether a Get error means the key does not exist, as
// opposed to a transport failure. The mock client reports misses with
// a plain error, the real one with redis.Nil.
func isMiss(err error) bool {
	return errors.Is(err, goredis.Nil) || strings.Contains(err.Error(), "key not found")
}
