package minio

import "errors"

var (
	// ErrPutObject возвращается при ошибке загрузки объекта
	ErrPutObject = errors.New("blob.minio: failed to put object")

	// ErrListObjects возвращается при ошибке получения списка объектов
	ErrListObjects = errors.New("blob.minio: failed to list objects")

	// ErrRemoveObject возвращается при ошибке удаления объекта
	ErrRemoveObject = errors.New("blob.minio: failed to remove object")

	// ErrStatObject возвращается при ошибке получения метаданных объекта
	ErrStatObject = errors.New("blob.minio: failed to stat object")

	// ErrPresign возвращается при ошибке подписи ссылки на скачивание
	ErrPresign = errors.New("blob.minio: failed to presign url")

	// ErrBucket возвращается при ошибке проверки или создания бакета
	ErrBucket = errors.New("blob.minio: bucket error")
)
