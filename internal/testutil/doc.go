// Package testutil holds tolerance helpers shared by the package tests:
// slice comparisons and multiset matching of complex roots.
package testutil
