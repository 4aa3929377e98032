package fleetmanager

import (
	"sort"

	"github.com/fleetscaler/fleetscaler/models"
)

// selectForTermination picks count instances to terminate: instances on the
// oldest launch-spec version go first, ties broken by oldest launch time.
func selectForTermination(instances []*models.Instance, count int) []*models.Instance {
	if count <= 0 {
		return nil
	}

	candidates := make([]*models.Instance, len(instances))
	copy(candidates, instances)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].LaunchSpecVersion != candidates[j].LaunchSpecVersion {
			return candidates[i].LaunchSpecVersion < candidates[j].LaunchSpecVersion
		}
		return candidates[i].LaunchedAt < candidates[j].LaunchedAt
	})

	if count > len(candidates) {
		count = len(candidates)
	}
	return candidates[:count]
}
