// Package inertia works with inertia matrices of rigid bodies: changing the
// frame they are expressed in, finding principal moments and axes, checking
// physical plausibility, and building them from standard solids and the
// parallel-axis theorem.
//
// Frames follow the rotation package convention: C = BCN maps N components
// to B components, so an inertia matrix known in B is expressed in N as
// N_I = Cᵀ · B_I · C (Rotate).
//
// Principal computes the frame F in which the inertia matrix is diagonal.
// The principal moments are sorted from large to small, and the rotation
// matrix NCF (principal axes as columns, in N components) is right-handed,
// so it is a valid rotation matrix and FCN = NCFᵀ.
package inertia
