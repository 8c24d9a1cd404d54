package middleware

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"movie-catalog-server/internal/config"
	"movie-catalog-server/internal/consts"
	"movie-catalog-server/internal/platform/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func (c *client) touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.touch()
	i.ips.Store(ip, c)

	return c.limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			c := value.(*client)
			if time.Since(time.Unix(0, c.lastSeen.Load())) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// redisWindow 根据 rps 与 burst 计算固定窗口长度，窗口内最多放行 burst 次
func redisWindow(rps float64, burst int) time.Duration {
	seconds := math.Ceil(float64(burst) / rps)
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

// allowByRedisRateLimit 使用 Redis 固定窗口计数实现多实例共享的限流
// rps 或 burst 非正数时视为不限流
func allowByRedisRateLimit(rdb *redis.Client, scope string, ip string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}

	window := redisWindow(rps, burst)
	slot := time.Now().UnixNano() / int64(window)
	key := cache.RedisKey("rate", scope, ip, strconv.FormatInt(slot, 10))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis incr %s: %w", key, err)
	}
	if count == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, fmt.Errorf("redis expire %s: %w", key, err)
		}
	}
	return count <= int64(burst), nil
}

// RateLimitMiddleware 为写接口创建按来源 IP 的限流中间件
// 配置实时读取自 ratelimit.*，Redis 可用时在多实例间共享计数
func RateLimitMiddleware(scope string) gin.HandlerFunc {
	// 同一 scope 的路由共用一个 IPRateLimiter 实例
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()

		if rdb := cache.GetRedisClient(); rdb != nil {
			ok, err := allowByRedisRateLimit(rdb, scope, ip, cfg.WriteRPS, cfg.WriteBurst)
			if err == nil {
				if !ok {
					c.JSON(http.StatusTooManyRequests, gin.H{"error": consts.MsgTooManyRequests})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			log.Printf("⚠️ Redis 限流失败，回退内存限流: %v", err)
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.WriteRPS), cfg.WriteBurst)
		})

		l := limiter.getLimiter(ip)

		// 配置变更后同步到已有的 limiter
		if l.Limit() != rate.Limit(cfg.WriteRPS) {
			l.SetLimit(rate.Limit(cfg.WriteRPS))
		}
		if l.Burst() != cfg.WriteBurst {
			l.SetBurst(cfg.WriteBurst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": consts.MsgTooManyRequests})
			c.Abort()
			return
		}
		c.Next()
	}
}
