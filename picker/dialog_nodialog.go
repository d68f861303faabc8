//go:build !dialog
// +build !dialog

package picker

// openDialog is a stub used when the native dialog build tag isn't set.
func openDialog() ([]string, error) {
	return nil, ErrDialogUnavailable
}
