// Package kernel provides the shared value objects of the laundry domain:
// UUID identifiers and the Optional wrapper used by sparse updates.
package kernel
