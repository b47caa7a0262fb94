// Package boltstore keeps sessions in a local bbolt database file.
//
// It suits single-instance deployments that want sessions to survive a
// restart without running a database server. Sessions are CBOR encoded,
// so input values keep their kinds. The file is locked by the process for
// as long as the Store is open.
//
//	store, err := boltstore.Open("sessions.db", 5*time.Second)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//	manager := session.New(session.WithStore(store), session.WithCookieManager(cookies))
package boltstore
