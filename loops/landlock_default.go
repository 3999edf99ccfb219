//go:build !linux

package loops

import "github.com/reusee/rlm/logs"

func applyLandlock(logger logs.Logger) error {
	logger.Warn("-safe has no effect on this platform")
	return nil
}
