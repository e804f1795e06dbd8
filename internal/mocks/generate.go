package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SourceProvider --dir ../usecase --output usecase --outpkg usecasemock --filename source_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name StoreConnector --dir ../usecase --output usecase --outpkg usecasemock --filename store_connector_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SyncStore --dir ../usecase --output usecase --outpkg usecasemock --filename sync_store_mock.go
