// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never touch the filesystem directly; every read and write goes
// through a driven port.
package services
