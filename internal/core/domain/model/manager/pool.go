package manager

import "resale/internal/core/domain/model/kernel"

// NormalizePool turns a raw staff listing into the assignable pool. Inactive
// and improperly constructed entries are dropped, duplicates are removed by
// identity, and when at least one manager-role account is present the pool is
// restricted to manager-role accounts; otherwise the full set (admins
// included) serves as the fallback pool.
//
// An empty result means no assignable staff exist at all, which is a hard
// stop for the autopilot run.
func NormalizePool(rows []*Manager) []*Manager {
	seen := make(map[kernel.UUID]struct{}, len(rows))
	normalized := make([]*Manager, 0, len(rows))

	for _, m := range rows {
		if m == nil || m.Validate() != nil || !m.Active() {
			continue
		}
		if _, dup := seen[m.ID()]; dup {
			continue
		}
		seen[m.ID()] = struct{}{}
		normalized = append(normalized, m)
	}

	managersOnly := make([]*Manager, 0, len(normalized))
	for _, m := range normalized {
		if m.Role() == RoleManager {
			managersOnly = append(managersOnly, m)
		}
	}
	if len(managersOnly) > 0 {
		return managersOnly
	}
	return normalized
}
