package router

// RegisterClient binds clientID to its counterparty client id. The spec
// assumes "the client is registered" throughout §4.3 without defining how;
// this is that missing admin operation, recovered from the original
// router's client registry.
func (r *Router) RegisterClient(clientID, counterpartyClientID string) error {
	return r.Store.PutClient(ClientRecord{
		ClientID:             clientID,
		CounterpartyClientID: counterpartyClientID,
	})
}

// RegisterIBCApp binds portID to the application that will be invoked on
// RecvPacket/AckPacket/TimeoutPacket for payloads addressed to that port.
func (r *Router) RegisterIBCApp(portID, appIdentity string, app IBCApp) error {
	if err := r.Store.PutPort(PortRecord{PortID: portID, AppIdentity: appIdentity}); err != nil {
		return err
	}
	r.Apps[portID] = app
	return nil
}
