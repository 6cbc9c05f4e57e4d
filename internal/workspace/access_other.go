//go:build !unix

package workspace

// checkTraversal is a no-op where access(2) is unavailable
func checkTraversal(dir string) error {
	return nil
}
