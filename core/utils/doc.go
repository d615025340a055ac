// Package utils provides common utility functions for the model-portfolio tools.
// It includes loose value conversion for hand-written metadata files and the
// content type table shared by the static server and the publisher.
package utils
