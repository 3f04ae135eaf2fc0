// Package pmt tracks supplemental feeding (Pemberian Makanan Tambahan):
// menus, the meals planned for a child, how much of each was eaten and the
// resulting compliance.
package pmt
