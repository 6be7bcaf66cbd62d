// package events contains message types sent into the tui program from
// goroutines outside it.
package events

import "twoface/internal/config"

// ConfigReloadedMsg is sent by the config watcher after the file changed
// and the new contents validated.
type ConfigReloadedMsg struct {
	Config config.Config
}
