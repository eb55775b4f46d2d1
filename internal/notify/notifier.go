// Package notify implements the observer broadcast used by the shelter demo.
//
// Notification is synchronous: Notify invokes every registered observer in
// registration order and returns only after all of them have run. Observers
// hold shared references to the same animals the container owns.
package notify

import (
	"io"
	"sync"

	"github.com/zjrosen/curios/internal/pubsub"
	"github.com/zjrosen/curios/internal/shelter"
)

// Observer reacts to an animal notification.
type Observer interface {
	Update(animal shelter.Animal)
}

// Notifier broadcasts animals to an ordered list of observers.
type Notifier struct {
	observers []Observer
}

// NewNotifier creates a notifier with no observers.
func NewNotifier() *Notifier {
	return &Notifier{observers: make([]Observer, 0)}
}

// AddObserver appends an observer. Registering the same observer twice means
// it runs twice per notification; no de-duplication is applied.
func (n *Notifier) AddObserver(observer Observer) {
	n.observers = append(n.observers, observer)
}

// Notify invokes every observer's Update with the animal, synchronously, in
// registration order.
func (n *Notifier) Notify(animal shelter.Animal) {
	for _, observer := range n.observers {
		observer.Update(animal)
	}
}

// WriterObserver writes one info line per notification to an io.Writer. The
// mutex keeps lines atomic if Update is ever called from multiple goroutines.
type WriterObserver struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterObserver creates an observer writing to w.
func NewWriterObserver(w io.Writer) *WriterObserver {
	return &WriterObserver{w: w}
}

// Update writes the animal's info line.
func (o *WriterObserver) Update(animal shelter.Animal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = io.WriteString(o.w, animal.Info()+"\n")
}

// BrokerObserver bridges notifications into a pubsub broker so Bubble Tea
// models can consume them as messages.
type BrokerObserver struct {
	broker *pubsub.Broker[shelter.Animal]
}

// NewBrokerObserver creates an observer publishing to broker.
func NewBrokerObserver(broker *pubsub.Broker[shelter.Animal]) *BrokerObserver {
	return &BrokerObserver{broker: broker}
}

// Update publishes the animal as a NotifiedEvent.
func (o *BrokerObserver) Update(animal shelter.Animal) {
	o.broker.Publish(pubsub.NotifiedEvent, animal)
}

// Compile-time checks for the built-in observers.
var (
	_ Observer = (*WriterObserver)(nil)
	_ Observer = (*BrokerObserver)(nil)
)
