package mocks

//go:generate mockgen -destination=./mock_commission.go -package=mocks github.com/rxtech-lab/argo-commission/internal/commission Model,Resolver
//go:generate mockgen -destination=./mock_fill_source.go -package=mocks github.com/rxtech-lab/argo-commission/internal/fills Source
