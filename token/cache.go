package token

import (
	"fmt"
	"os/user"
	"strconv"
	"time"

	"github.com/Velocidex/ttlcache/v2"
)

// Name lookups hit the opendirectory daemon on macOS so we cache
// them briefly. Sized generously - a process listing resolves the
// same few uids thousands of times.
var name_cache = func() *ttlcache.Cache {
	cache := ttlcache.NewCache()
	_ = cache.SetTTL(60 * time.Second)
	cache.SkipTTLExtensionOnHit(true)
	return cache
}()

func LookupUID(uid uint32) string {
	key := fmt.Sprintf("u/%d", uid)
	cached, err := name_cache.Get(key)
	if err == nil {
		return cached.(string)
	}

	name := strconv.Itoa(int(uid))
	user_rec, err := user.LookupId(name)
	if err == nil {
		name = user_rec.Username
	}

	_ = name_cache.Set(key, name)
	return name
}

func LookupGID(gid uint32) string {
	key := fmt.Sprintf("g/%d", gid)
	cached, err := name_cache.Get(key)
	if err == nil {
		return cached.(string)
	}

	name := strconv.Itoa(int(gid))
	group_rec, err := user.LookupGroupId(name)
	if err == nil {
		name = group_rec.Name
	}

	_ = name_cache.Set(key, name)
	return name
}
