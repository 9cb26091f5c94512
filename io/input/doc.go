// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements input routing and tracking of interface
state for a window.

The [State] tracks everything that outlives a single event: focus,
hover, press grabs, timers, popups, and pending work queues. The shell
constructs one State per window and feeds it platform input through
the Handle methods.

A [Context] wraps the State with the message stack and per-traversal
bookkeeping. It is passed to widget event handlers, which use it to
grab presses, request focus and timers, open popups, and push messages
for their ancestors.

Widgets form a tree of [Node] implementations addressed by structural
identifiers (see package id). Events are delivered by recursive
descent along the target's path: each ancestor may steal the event on
the way down; an event unused by the target bubbles back up; messages
pushed by a handler are offered to its ancestors, nearest first, on
the same unwind.
*/
package input
