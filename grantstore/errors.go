package grantstore

import "fmt"

var (
	ErrTableBucketNotFound = func(table string) error {
		return fmt.Errorf("table %s has not been populated", table)
	}
)
