// Package rotation builds and analyses direction cosine matrices (DCMs).
//
// Convention: a rotation matrix FCN maps the components of a vector in
// triad N to its components in triad F,
//
//	F_r = FCN · N_r,   N_r = FCNᵀ · F_r,
//
// so AboutX(θ) rotates triad N into F by θ radians about their common x
// axis. Successive rotations compose right to left: for N→G→H→B,
// BCN = BCH · HCG · GCN (see Sequence).
//
// Besides the elementary matrices the package extracts the principal
// rotation axis and angle (the eigenvector belonging to eigenvalue 1),
// rebuilds a DCM from axis and angle, and converts to and from quaternions
// through mathgl's mgl64 package.
package rotation
