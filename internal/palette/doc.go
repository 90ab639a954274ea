// Package palette implements value resolution and change notification for
// themeable visuals.
//
// A Storage holds one Bucket of Slots per visual state of a Feature. A
// lookup checks the requested state's bucket, then the Common bucket, and
// then follows the storage's Redirector, which may point at another Storage
// or another Redirector, until a base storage answers. Redirectors can be
// re-pointed at any time; resolution detects cycles instead of recursing
// forever.
//
// Mutations go the other way: every Storage has one NeedPaintHandler sink,
// usually the PerformNeedPaint method of the storage that owns it, so a
// change anywhere in a tree of storages reaches the root sink exactly once.
//
// Nothing in this package locks. All calls are expected on one goroutine;
// see theme.Manager for a guarded wrapper.
package palette
