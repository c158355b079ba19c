package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	Employee  EmployeeRepository
	Personal  PersonalRepository
	Education EducationRepository
	Family    FamilyRepository
	Address   AddressRepository
	Work      WorkRepository
}

// NewRepository wires the GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:  NewEmployeeRepo(db),
		Personal:  NewPersonalRepo(db),
		Education: NewEducationRepo(db),
		Family:    NewFamilyRepo(db),
		Address:   NewAddressRepo(db),
		Work:      NewWorkRepo(db),
	}
}
