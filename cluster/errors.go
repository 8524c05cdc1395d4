// SPDX-License-Identifier: MIT

package cluster

import "errors"

// MissingAtomInformation is returned when a clustering mode cannot
// proceed because SBU detection found nothing usable.
var MissingAtomInformation = errors.New("cluster: SBU detection found no usable clusters")

// MissingClusters is returned when InputClustering is requested but the
// input crystal carries no clustering.
var MissingClusters = errors.New("cluster: InputClustering requested with no clusters present")
