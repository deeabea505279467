package company

import (
	"context"

	"github.com/hrledger/hr-backend-go/internal/domain/company"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepository,
	}
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context) (company.InfoResponse, error) {
	info, err := s.CompanyRepository.Get(ctx)
	if err != nil {
		return company.InfoResponse{}, err
	}
	return company.ToResponse(info), nil
}

// Save implements company.CompanyService.
func (s *CompanyServiceImpl) Save(ctx context.Context, req company.SaveInfoRequest) (company.InfoResponse, error) {
	if err := req.Validate(); err != nil {
		return company.InfoResponse{}, err
	}

	saved, err := s.CompanyRepository.Save(ctx, company.Info{
		PlaceName:   req.PlaceName,
		ManagerName: req.ManagerName,
	})
	if err != nil {
		return company.InfoResponse{}, err
	}

	return company.ToResponse(saved), nil
}
