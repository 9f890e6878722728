// Package thumbnails serves kit and part images through an object storage mirror.
//
// Catalog records reference images by name and the domain prefixes them with
// /thumbnail/. This feature backs that path: on first access an image is
// fetched from the catalog's image host, written to the mirror bucket, and
// served from storage on every subsequent request.
//
// The feature is optional and disabled when no storage client is configured.
package thumbnails
