package installer

import "github.com/MKhiriev/go-module-installer/models"

// ApplyUpgrades folds steps (ascending by version) into the version the
// database ends up at. Steps at or below the accumulated version are
// skipped; every other step is passed to apply and, when apply succeeds,
// becomes the new accumulated version.
//
// On failure the version reached before the failing step is returned along
// with the error, so a later run resumes from there.
func ApplyUpgrades(current models.ModuleVersion, steps []UpgradeStep, apply func(UpgradeStep) error) (models.ModuleVersion, error) {
	for _, step := range steps {
		if !current.Less(step.Version) {
			continue
		}
		if err := apply(step); err != nil {
			return current, err
		}
		current = step.Version
	}
	return current, nil
}

// PendingUpgrades returns the steps ApplyUpgrades would run from current.
func PendingUpgrades(current models.ModuleVersion, steps []UpgradeStep) []UpgradeStep {
	pending := make([]UpgradeStep, 0, len(steps))
	_, _ = ApplyUpgrades(current, steps, func(step UpgradeStep) error {
		pending = append(pending, step)
		return nil
	})
	return pending
}
