// Package catalog models the laundry services customers can order.
// Services are managed elsewhere; this package only restores and reads them.
package catalog
