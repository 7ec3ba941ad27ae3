// Package analysis runs filter analyses on behalf of the front ends and
// turns the results into JSON-ready reports.
package analysis
