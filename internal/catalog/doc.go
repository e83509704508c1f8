// Package catalog holds the closed, ordered sets of values construct accepts
// for a setting: licenses, test frameworks and minimum PHP versions. Order is
// significant. The first-class default of each set is used when a user
// supplies an unknown value, and the PHP version order drives the CI matrix.
package catalog
