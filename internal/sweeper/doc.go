// Package sweeper expires idle page view sessions in the background.
//
// Browsers do not always announce that a tab has closed, so sessions that
// have not been touched within the configured TTL are removed on a timer.
package sweeper
