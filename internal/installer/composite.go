package installer

import (
	"context"
	"slices"
)

// Composite combines a primary installer with additional ones.
//
// Capabilities are the logical OR over all children. Install and Upgrade
// call every child in registration order, Uninstall in reverse order. Each
// child is called regardless of its own Can* result and guards itself; the
// first child error aborts the remaining children and is returned as is.
type Composite struct {
	children []Installer
}

// NewComposite builds a composite over [primary, additional...]. Nil
// additional installers are ignored.
func NewComposite(primary Installer, additional ...Installer) (*Composite, error) {
	if primary == nil {
		return nil, ErrNoPrimaryInstaller
	}

	children := make([]Installer, 0, len(additional)+1)
	children = append(children, primary)
	for _, child := range additional {
		if child != nil {
			children = append(children, child)
		}
	}

	return &Composite{children: children}, nil
}

// Children returns the installers in registration order.
func (c *Composite) Children() []Installer {
	return slices.Clone(c.children)
}

func (c *Composite) CanInstall() bool {
	return slices.ContainsFunc(c.children, Installer.CanInstall)
}

func (c *Composite) CanUpgrade() bool {
	return slices.ContainsFunc(c.children, Installer.CanUpgrade)
}

func (c *Composite) CanUninstall() bool {
	return slices.ContainsFunc(c.children, Installer.CanUninstall)
}

func (c *Composite) Install(ctx context.Context) error {
	for _, child := range c.children {
		if err := child.Install(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composite) Upgrade(ctx context.Context) error {
	for _, child := range c.children {
		if err := child.Upgrade(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composite) Uninstall(ctx context.Context) error {
	for _, child := range slices.Backward(c.children) {
		if err := child.Uninstall(ctx); err != nil {
			return err
		}
	}
	return nil
}
