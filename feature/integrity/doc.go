// Package integrity audits the published gallery after generation.
//
// The index pipeline never reads its own output; this package does. It loads the
// published gallery and checks every referenced file relative to the site root.
//
// # Checks Provided
//
//   - Files: every thumbnail (optionally every image) exists. Files with an image
//     extension must also sniff as an image. URLs are reported as EXTERNAL and not fetched.
//   - Bucket: the gallery and the asset tree are published to object storage and the
//     published gallery matches the local one.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs the file check (supports ?images=true).
//   - GET /integrity/bucket : Runs the bucket check.
package integrity
