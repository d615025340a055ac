// Package pathresolve maps raw image references from catalog sources to
// site-relative paths.
//
// Resolution is split in two phases. Plan is a pure decision over filesystem
// existence checks and never writes. Import executes the only side effect: copying
// an externally referenced file into the item's managed folder. Resolve runs both.
//
// # Resolution Order
//
//  1. Blank reference: unresolvable.
//  2. Reference starting with "http": returned verbatim.
//  3. Absolute path: imported into <asset root>/<id>/<base name> when it exists,
//     unresolvable otherwise.
//  4. Relative path already under the asset root: returned as-is.
//  5. Relative path found at <asset root>/<ref> or <asset root>/<id>/<ref>: that path.
//  6. Otherwise a best-guess <asset root>/<ref> is returned.
//
// Results never leave the asset root: a relative reference that cleans to a path
// outside it is unresolvable, and imports need an id accepted by SafeID.
package pathresolve
