// Package storage provides the object storage layer for the roster
// document archive.
//
// It wraps the MinIO Go client behind a small interface so imported
// roster workbooks can be archived to and fetched from any S3
// compatible store, and so storage interactions can be mocked in unit
// tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket lifecycle for the archive.
//   - PutObject: archives an imported workbook.
//   - GetObject: retrieves an archived workbook as a stream.
//   - ListObjects: lists archived workbooks (supports prefix).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "rosters")
package storage
