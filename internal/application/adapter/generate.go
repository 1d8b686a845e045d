package adapter

//go:generate mockgen -source=recurring_transaction_repository.go -destination=mocks/mock_recurring_transaction_repository.go -package=mocks
//go:generate mockgen -source=transaction_repository.go -destination=mocks/mock_transaction_repository.go -package=mocks
//go:generate mockgen -source=tx_manager.go -destination=mocks/mock_tx_manager.go -package=mocks
//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
//go:generate mockgen -source=email_sender.go -destination=mocks/mock_email_sender.go -package=mocks
//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks
//go:generate mockgen -source=goal_repository.go -destination=mocks/mock_goal_repository.go -package=mocks
//go:generate mockgen -source=analytics_repository.go -destination=mocks/mock_analytics_repository.go -package=mocks
//go:generate mockgen -source=password_service.go -destination=mocks/mock_password_service.go -package=mocks
//go:generate mockgen -source=token_service.go -destination=mocks/mock_token_service.go -package=mocks
