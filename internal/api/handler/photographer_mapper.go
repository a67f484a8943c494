package handler

import (
	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateProfileInput(req createProfileRequest) ports.CreateProfileInput {
	input := ports.CreateProfileInput{
		BusinessName:    req.BusinessName,
		Bio:             req.Bio,
		Specializations: toSpecializations(req.Specializations),
		Experience:      req.Experience,
		HourlyRate:      req.HourlyRate,
		Location:        toLocation(req.Location),
		Services:        toServiceOfferings(req.Services),
		Equipment:       req.Equipment,
		Certifications:  toCertifications(req.Certifications),
	}
	if req.Availability != nil {
		input.Availability = toAvailability(req.Availability)
	}
	if req.SocialMedia != nil {
		input.SocialMedia = toSocialMedia(*req.SocialMedia)
	}
	return input
}

func toProfileUpdate(req updateProfileRequest) ports.ProfileUpdate {
	upd := ports.ProfileUpdate{
		BusinessName: req.BusinessName,
		Bio:          req.Bio,
		Experience:   req.Experience,
		HourlyRate:   req.HourlyRate,
		Equipment:    req.Equipment,
	}
	if req.Specializations != nil {
		specs := toSpecializations(*req.Specializations)
		upd.Specializations = &specs
	}
	if req.Location != nil {
		loc := toLocation(*req.Location)
		upd.Location = &loc
	}
	if req.Services != nil {
		services := toServiceOfferings(*req.Services)
		upd.Services = &services
	}
	if req.Availability != nil {
		availability := toAvailability(*req.Availability)
		upd.Availability = &availability
	}
	if req.Certifications != nil {
		certs := toCertifications(*req.Certifications)
		upd.Certifications = &certs
	}
	if req.SocialMedia != nil {
		social := toSocialMedia(*req.SocialMedia)
		upd.SocialMedia = &social
	}
	return upd
}

func toSpecializations(values []string) []domain.Specialization {
	specs := make([]domain.Specialization, len(values))
	for i, v := range values {
		specs[i] = domain.Specialization(v)
	}
	return specs
}

func toLocation(req locationRequest) domain.Location {
	loc := domain.Location{City: req.City, State: req.State}
	if req.Coordinates != nil {
		loc.Coordinates = &domain.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}
	return loc
}

func toServiceOfferings(reqs []serviceOfferingRequest) []domain.ServiceOffering {
	if reqs == nil {
		return nil
	}
	services := make([]domain.ServiceOffering, len(reqs))
	for i, r := range reqs {
		services[i] = domain.ServiceOffering{
			Name:          r.Name,
			Description:   r.Description,
			Price:         r.Price,
			DurationHours: r.DurationHours,
		}
	}
	return services
}

func toAvailability(req map[string]dayAvailabilityRequest) domain.Availability {
	availability := make(domain.Availability, len(req))
	for day, window := range req {
		availability[day] = domain.DayAvailability{
			Start:     window.Start,
			End:       window.End,
			Available: window.Available,
		}
	}
	return availability
}

func toCertifications(reqs []certificationRequest) []domain.Certification {
	if reqs == nil {
		return nil
	}
	certs := make([]domain.Certification, len(reqs))
	for i, r := range reqs {
		certs[i] = domain.Certification{
			Name:           r.Name,
			Issuer:         r.Issuer,
			Year:           r.Year,
			CertificateURL: r.CertificateURL,
		}
	}
	return certs
}

func toSocialMedia(req socialMediaRequest) domain.SocialMedia {
	return domain.SocialMedia{
		Facebook:  req.Facebook,
		Instagram: req.Instagram,
		Twitter:   req.Twitter,
		LinkedIn:  req.LinkedIn,
		Website:   req.Website,
	}
}

// --- Service result → HTTP response ---

func toProfileResponse(view *ports.ProfileView) profileResponse {
	return profileResponse{Photographer: view.Photographer, Owner: view.Owner}
}

func toDirectoryResponse(page *ports.DirectoryPage) directoryResponse {
	items := make([]profileResponse, len(page.Items))
	for i, item := range page.Items {
		items[i] = profileResponse{Photographer: item.Photographer, Owner: item.Owner}
	}
	return directoryResponse{
		Photographers: items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.PageSize,
			TotalPages: page.TotalPages,
		},
	}
}
