package domain

type ChainId int64
