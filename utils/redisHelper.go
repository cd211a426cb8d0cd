package utils

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/amirrdn/acounting-api/config"
)

func GetCacheLifespan() time.Duration {
	lifespan, err := strconv.Atoi(os.Getenv("CACHE_LIFESPAN"))
	if err != nil {
		lifespan = 1
	}
	return time.Duration(lifespan) * time.Hour
}

/* generic functions */

func GetTypeName[T any]() string {
	var v T
	typeOfT := reflect.TypeOf(v)
	return typeOfT.Name()
}

/* Redis */

// store instance, obj should be a pointer
func StoreRedis[T any](obj any, id int) error {
	key := GetTypeName[T]() + ":" + fmt.Sprint(id)
	return config.SetRedisObject(key, &obj, GetCacheLifespan())
}

// store list
func StoreRedisList[T any](obj any) error {
	key := GetTypeName[T]() + "List"
	return config.SetRedisObject(key, &obj, GetCacheLifespan())
}

// get from redis
// returns nil if does not exist
func RetrieveRedis[T any](id int) (*T, error) {
	var result *T
	key := GetTypeName[T]() + ":" + fmt.Sprint(id)
	exists, err := config.GetRedisObject(key, &result)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return result, nil
}

// get list from redis
// returns nil if does not exist
func RetrieveRedisList[T any]() ([]*T, error) {
	var results []*T
	key := GetTypeName[T]() + "List"
	exists, err := config.GetRedisObject(key, &results)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return results, nil
}

// drop both the instance key and the list key after a write
func RemoveInstanceRedis[T any](id int) error {
	typeName := GetTypeName[T]()
	return config.RemoveRedisKey(typeName+":"+fmt.Sprint(id), typeName+"List")
}

func RemoveListRedis[T any]() error {
	return config.RemoveRedisKey(GetTypeName[T]() + "List")
}
