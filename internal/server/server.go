package server

// Server aggregates the entity specific HTTP servers behind one route table.
type Server struct {
	ProductServer
	DealServer
	NotificationServer
	UserServer
}

func NewServer(
	productServer ProductServer,
	dealServer DealServer,
	notificationServer NotificationServer,
	userServer UserServer,
) Server {
	return Server{
		ProductServer:      productServer,
		DealServer:         dealServer,
		NotificationServer: notificationServer,
		UserServer:         userServer,
	}
}
