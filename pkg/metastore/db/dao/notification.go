package dao

import (
	"github.com/corevecdb/corevec/pkg/metastore/db/dbmodel"
	"gorm.io/gorm"
)

type notificationDb struct {
	db *gorm.DB
}

var _ dbmodel.INotificationDb = &notificationDb{}

func (s *notificationDb) DeleteAll() error {
	return s.db.Where("1 = 1").Delete(&dbmodel.Notification{}).Error
}

func (s *notificationDb) Delete(id []int64) error {
	return s.db.Where("id IN ?", id).Delete(&dbmodel.Notification{}).Error
}

func (s *notificationDb) Insert(in *dbmodel.Notification) error {
	return s.db.Create(in).Error
}

func (s *notificationDb) GetAllPendingNotifications() ([]*dbmodel.Notification, error) {
	var notifications []*dbmodel.Notification
	if err := s.db.Where("status = ?", dbmodel.NotificationStatusPending).Order("id").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *notificationDb) GetNotificationByCollectionID(collectionID string) ([]*dbmodel.Notification, error) {
	var notifications []*dbmodel.Notification
	if err := s.db.Where("collection_id = ?", collectionID).Order("id").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
