package models

import (
	"fmt"
	"strings"
)

// InstallAction names a lifecycle action requested for a module.
type InstallAction string

const (
	// ActionInstall runs the install script of a module that has no
	// recorded version yet.
	ActionInstall InstallAction = "install"

	// ActionUpgrade applies every upgrade script newer than the recorded
	// version.
	ActionUpgrade InstallAction = "upgrade"

	// ActionUninstall runs the uninstall script.
	ActionUninstall InstallAction = "uninstall"

	// ActionStatus only reports versions and capabilities.
	ActionStatus InstallAction = "status"
)

// ParseInstallAction maps a case-insensitive action name to an
// [InstallAction]. An empty string maps to [ActionStatus].
func ParseInstallAction(s string) (InstallAction, error) {
	switch action := InstallAction(strings.ToLower(strings.TrimSpace(s))); action {
	case "":
		return ActionStatus, nil
	case ActionInstall, ActionUpgrade, ActionUninstall, ActionStatus:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInstallAction, s)
	}
}
