// Package menu contains the catalog entities: menu items and side dishes.
//
// Both are seeded once and edited rarely. They are never deleted while
// referenced by orders; removing one from the menu is a soft-deactivation
// (the active flag flips to false), which preserves historical order data.
package menu
