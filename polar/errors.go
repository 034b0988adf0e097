// SPDX-License-Identifier: MIT
// Package polar: sentinel errors.

package polar

import "errors"

// ErrNoIncidentFlux indicates the incident wave carries no power along z
// (Re q_front ≤ 0), so transmittances are undefined.
var ErrNoIncidentFlux = errors.New("polar: no incident flux")
