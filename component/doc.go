// Package component manages the lifecycle of long-lived infrastructure used
// during a run, such as telemetry exporters.
//
// Components are started in registration order and stopped in reverse order.
// A component whose Start failed is never stopped.
package component
