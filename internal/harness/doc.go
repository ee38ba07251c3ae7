// Package harness runs puzzle solvers for a day, timing each part over a
// number of iterations and reporting the answers.
package harness
