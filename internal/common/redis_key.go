package common

import "fmt"

func IndexPageCacheKey(page int) string {
	return fmt.Sprintf("index:%d", page)
}
