package minio

import "time"

// Object описание объекта в бакете
type Object struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}
