// Package redischeck provides a Redis connectivity probe for pulse health
// checks.
//
// The probe works with any [github.com/redis/go-redis/v9] client satisfying
// redis.UniversalClient (single node, sentinel, or cluster) and performs a
// single PING round trip per invocation.
package redischeck
