// Package publish mirrors the generated site data to an S3 compatible bucket.
//
// Publishing is split into a read-only Plan and an Apply step, like a dry run
// followed by execution. A file is uploaded when its object is missing or has a
// different size. With Prune, objects under the asset prefix that no longer have
// a local file are deleted. The gallery file is always uploaded last.
//
// # Usage
//
//	svc := publish.NewService(fs, cfg.Gallery, client, cfg.Storage, logger)
//	plan, executed, err := svc.Publish(ctx, publish.Options{Prune: true})
package publish
