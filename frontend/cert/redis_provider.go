package cert

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/icecave/ytproxy/name"
)

// errNotFound is returned by getRedisCertificate when the hash for a server
// name is missing or incomplete.
var errNotFound = errors.New("certificate not found")

// RedisProvider is a certificate provider that reads certificates from Redis.
//
// The certificate for "www.example.com" is stored in the hash
// "ssl:www.example.com", with the PEM encoded chain in the "certificate" field
// and the PEM encoded private key in the "key" field.
type RedisProvider struct {
	Logger *log.Logger
	Client redis.Cmdable

	// CacheAge is the time after which a cached certificate is fetched again.
	// If it is zero cached certificates never expire. When Redis is unavailable
	// an expired certificate continues to be served.
	CacheAge time.Duration

	mutex sync.RWMutex
	cache map[string]*redisCacheItem
}

type redisCacheItem struct {
	Certificate *tls.Certificate
	LastSeen    time.Time
}

// GetCertificate attempts to fetch a certificate for the given server name.
func (p *RedisProvider) GetCertificate(ctx context.Context, n name.ServerName) (*tls.Certificate, error) {
	item, ok := p.findInCache(n)
	if ok && !p.expired(item) {
		return item.Certificate, nil
	}

	cert, err := p.getRedisCertificate(ctx, n)
	if err == nil {
		p.writeToCache(n, cert)
		return cert, nil
	}

	if ok {
		p.logf("serving expired certificate for '%s' from cache, %s", n.Unicode, err)
		return item.Certificate, nil
	}

	if !errors.Is(err, errNotFound) {
		p.logf("unable to fetch certificate for '%s' from redis, %s", n.Unicode, err)
	}

	return nil, nil
}

func certificateRedisKey(n name.ServerName) string {
	return fmt.Sprintf("ssl:%s", n.Unicode)
}

func (p *RedisProvider) getRedisCertificate(ctx context.Context, n name.ServerName) (*tls.Certificate, error) {
	fields, err := p.Client.HGetAll(ctx, certificateRedisKey(n)).Result()
	if err != nil {
		return nil, err
	}

	certPEM, ok := fields["certificate"]
	if !ok {
		return nil, errNotFound
	}

	keyPEM, ok := fields["key"]
	if !ok {
		return nil, errNotFound
	}

	cert, err := tls.X509KeyPair([]byte(certPEM), []byte(keyPEM))
	if err != nil {
		return nil, err
	}

	return &cert, nil
}

func (p *RedisProvider) logf(format string, v ...interface{}) {
	if p.Logger != nil {
		p.Logger.Printf(format, v...)
	}
}

func (p *RedisProvider) expired(item *redisCacheItem) bool {
	return p.CacheAge > 0 && time.Since(item.LastSeen) > p.CacheAge
}

func (p *RedisProvider) findInCache(n name.ServerName) (*redisCacheItem, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	item, ok := p.cache[n.Unicode]

	return item, ok
}

func (p *RedisProvider) writeToCache(n name.ServerName, cert *tls.Certificate) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.cache == nil {
		p.cache = map[string]*redisCacheItem{}
	}

	p.cache[n.Unicode] = &redisCacheItem{
		Certificate: cert,
		LastSeen:    time.Now(),
	}
}
