// Package notify provides the per-instance change channel attached to every
// geomlib shape.
//
// 🚀 What is a Notifier?
//
//	A Notifier is a tiny in-process publish/subscribe list. Each shape owns
//	exactly one, created together with the shape. When the shape is edited,
//	a ChangeEvent named "<kind>-edited" is published on the OLD shape's
//	notifier, carrying the before/after value of every parameter.
//
// ✨ Guarantees:
//   - Synchronous delivery in the publisher's goroutine, in subscription order.
//   - No history: a listener subscribed after an edit never sees that edit.
//   - Subscribe/Unsubscribe are safe for concurrent use (sync.RWMutex).
//   - Events are stamped with a uuid.UUID and a timestamp; both sources are
//     injectable through WithIDSource and WithClock for deterministic tests.
//
// ⚙️ Usage:
//
//	n := notify.New()
//	id, _ := n.Subscribe("rectangle-edited", func(e notify.ChangeEvent) {
//	    fmt.Println(e.Detail()) // map[newHeight:10 newWidth:20 oldHeight:5 oldWidth:10]
//	})
//	defer n.Unsubscribe(id)
package notify
