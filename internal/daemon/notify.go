// internal/daemon/notify.go
package daemon

import (
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/pkg/errors"
)

// Ready tells systemd the service finished starting.
// sent is false when not running under systemd (no NOTIFY_SOCKET).
func Ready() (sent bool, err error) {
	sent, err = daemon.SdNotify(false, daemon.SdNotifyReady)
	return sent, errors.Wrap(err, "sd_notify ready")
}
