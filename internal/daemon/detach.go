// internal/daemon/detach.go
package daemon

import (
	"github.com/pkg/errors"
	godaemon "github.com/sevlyar/go-daemon"
)

// Detacher moves the process into the background.
//
// Go cannot fork a running runtime, so the process is re-executed with
// the same arguments and detached from the terminal. The original
// process learns it is the parent and is expected to exit.
type Detacher struct {
	ctx *godaemon.Context
}

func NewDetacher() *Detacher {
	return &Detacher{
		ctx: &godaemon.Context{
			WorkDir: "/",
			Umask:   027,
		},
	}
}

// Detach returns parent == true in the original process and false in the
// background copy.
func (d *Detacher) Detach() (parent bool, err error) {
	child, err := d.ctx.Reborn()
	if err != nil {
		return false, errors.Wrap(err, "detach")
	}
	return child != nil, nil
}

// Background reports whether this process is the detached copy.
func (d *Detacher) Background() bool {
	return godaemon.WasReborn()
}

// Release frees what Detach acquired. Safe to call in either process.
func (d *Detacher) Release() error {
	return errors.Wrap(d.ctx.Release(), "detach release")
}
